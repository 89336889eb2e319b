// Package info reports where studyhub reads its configuration and data.
package info

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/studyhub/pkg/printers"
	"tableflip.dev/studyhub/pkg/store"
)

// Pinger is implemented by backends that can check their connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Info struct {
	Config *store.Config
	Store  *store.Store
	Output printers.Options
}

// Report is the machine-readable form of Info.
type Report struct {
	ConfigPathEnv string         `json:"configPathEnv,omitempty"`
	ConfigFile    string         `json:"configFile,omitempty"`
	Backend       string         `json:"backend"`
	Location      string         `json:"location"`
	Reachable     bool           `json:"reachable"`
	ReachError    string         `json:"reachError,omitempty"`
	Counts        map[string]int `json:"counts"`
	Notifications string         `json:"notifications"`
	Theme         string         `json:"theme,omitempty"`
}

func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil {
		return fmt.Errorf("info: no config loaded")
	}
	if n.Store == nil {
		return fmt.Errorf("info: failed to open the store")
	}

	r := Report{
		ConfigPathEnv: os.Getenv("STUDYHUB_CONFIG_PATH"),
		ConfigFile:    n.Config.File,
		Backend:       n.Config.Backend,
		Reachable:     true,
		Notifications: n.Store.NotificationsFlag(ctx).String(),
		Theme:         n.Store.Theme(ctx),
	}
	p := n.Store.Persistence()
	if d, ok := p.(store.Describer); ok {
		r.Location = d.Describe()
	}
	if pinger, ok := p.(Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			r.Reachable = false
			r.ReachError = err.Error()
		}
	}
	snap := n.Store.Snapshot()
	r.Counts = map[string]int{
		"tasks":  len(snap.Tasks),
		"events": len(snap.Events),
		"notes":  len(snap.Notes),
	}

	if n.Output.JSON {
		return n.Output.Encode(r)
	}

	w := n.Output.Writer()
	if r.ConfigPathEnv != "" {
		_, _ = fmt.Fprintln(w, "STUDYHUB_CONFIG_PATH found on env, using", r.ConfigPathEnv)
	} else {
		_, _ = fmt.Fprintln(w, "STUDYHUB_CONFIG_PATH env var not set")
	}

	file := r.ConfigFile
	if file == "" {
		file = color.New(color.Faint).Sprint("none, using defaults")
	}
	reach := color.New(color.FgGreen).Sprint("ok")
	if !r.Reachable {
		reach = color.New(color.FgRed).Sprint(r.ReachError)
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("config file:", file)
	tbl.AddRow("backend:", r.Backend)
	tbl.AddRow("location:", r.Location)
	tbl.AddRow("reachable:", reach)
	tbl.AddRow("tasks:", r.Counts["tasks"])
	tbl.AddRow("events:", r.Counts["events"])
	tbl.AddRow("notes:", r.Counts["notes"])
	tbl.AddRow("notifications:", r.Notifications)
	tbl.AddRow("theme:", r.Theme)
	_, _ = fmt.Fprintln(w, tbl)
	return nil
}
