// Package ui contains the Bubble Tea program that hosts several tab containers
// side by side. The Model focuses on message orchestration, while dedicated
// helpers own strip geometry, mouse gestures, prompts, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Key presses go to
//     the open prompt first; everything else is routed through a typed handler
//     registry so each tea.Msg is handled by a focused function.
//   - Mouse press, motion and release messages are turned into a drag
//     gesture (internal/ui/mouse.go). Hit testing maps a cell to the tab
//     element under it (internal/ui/strip.go), which is what the tabs package
//     expects as a drop target.
//
// Reconciliation:
//   - Containers never rebuild synchronously. Mutations made while handling a
//     message are queued by the tree document; finishUpdate returns a command
//     yielding flushMsg whenever records are pending, and the flush handler
//     delivers them. Each container therefore resyncs once, after the current
//     unit of work, and sees only the final item order.
//
// Rendering:
//   - Containers draw through stripSurface, which caches a truncated label and
//     marker state on every handle. View lays the panes out with a divider and
//     reads those caches, so the strip on screen and the geometry used for hit
//     testing are derived from the same values.
package ui
