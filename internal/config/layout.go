package config

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tabdeck/internal/app"
	"github.com/spf13/viper"
)

type containerFile struct {
	Name string    `mapstructure:"name"`
	Tabs []tabFile `mapstructure:"tabs"`
}

type tabFile struct {
	Title  string `mapstructure:"title"`
	Body   string `mapstructure:"body"`
	Active bool   `mapstructure:"active"`
}

// readFile loads the config file at path. An empty path means no file.
func readFile(path string) (*viper.Viper, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return v, nil
}

// readLayout returns the containers listed in the file, or the built-in
// layout when the file has none.
func readLayout(file *viper.Viper) ([]app.ContainerSpec, error) {
	if file == nil || !file.IsSet("containers") {
		return DefaultLayout(), nil
	}
	var containers []containerFile
	if err := file.UnmarshalKey("containers", &containers); err != nil {
		return nil, fmt.Errorf("decode containers: %w", err)
	}
	layout := make([]app.ContainerSpec, 0, len(containers))
	for i, c := range containers {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			name = fmt.Sprintf("pane-%d", i+1)
		}
		spec := app.ContainerSpec{Name: name}
		for _, t := range c.Tabs {
			spec.Tabs = append(spec.Tabs, app.TabSpec{Title: t.Title, Body: t.Body, Active: t.Active})
		}
		layout = append(layout, spec)
	}
	return layout, nil
}

// DefaultLayout is the two-container demo shown without a config file.
func DefaultLayout() []app.ContainerSpec {
	return []app.ContainerSpec{
		{
			Name: "left",
			Tabs: []app.TabSpec{
				{Title: "welcome", Body: "Drag a tab by its title to reorder it.\nDrop it on the other strip to move it there.\nClick × to close a tab."},
				{Title: "keys", Body: "n  new tab in the focused pane\nr  rename the active tab\nx  close the active tab\n/  find a tab by title\nq  quit"},
				{Title: "notes", Body: "Tabs keep their identity when they move,\nso a renamed tab stays renamed in its new home."},
			},
		},
		{
			Name: "right",
			Tabs: []app.TabSpec{
				{Title: "scratch", Body: "Empty panes stay open; drop a tab on their strip."},
				{Title: "log", Body: "Run with --trace to record every move in the log file."},
			},
		},
	}
}
