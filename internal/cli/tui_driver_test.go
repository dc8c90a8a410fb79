package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/smartfarm/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for the stored profile, sizes the
// terminal and drains Init (which talks to the in-memory DB synchronously).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	profile, err := app.Profiles.Current(context.Background())
	require.NoError(t, err)

	d := teatest.New(t, newAppModel(app, profile), teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Chat returns the chat view at the bottom of the stack.
func (d *TestDriver) Chat() *chatView {
	return d.appModel().viewStack[0].(*chatView)
}

// IsQuitting reports whether the model or the driver saw a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
