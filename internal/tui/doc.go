// Package tui provides the terminal front-end for the course and
// participant API.
//
// The TUI is built on Bubble Tea and follows a Model-View-Controller split:
//
//   - Model (internal/tui/model/): the shell state (active tab, error slot,
//     status bar, activity log) and the generic resource Panel that issues
//     list, create, lookup and delete requests against the backend
//   - View (internal/tui/view/): renders the header, tab bar, error banner,
//     the panel's create, lookup and list sections, and the help and log
//     overlays
//   - Controller (internal/tui/controller/): routes Bubble Tea messages and
//     key presses to the model and owns the program lifecycle
//
// Shared building blocks live in components/ (header, bordered section,
// status bar), design/ (palette and styles) and utils/ (string helpers).
//
// # Request lifecycle
//
// Every panel operation returns a tea.Cmd that performs the HTTP call off the
// UI goroutine and yields a completion message tagged with the panel's mount
// epoch. Switching tabs mounts a fresh panel with a new epoch, so completions
// belonging to an unmounted panel never overwrite the new tab's state. Failures
// from any panel, mounted or not, land in the single error slot shown as
// the banner under the tab bar; the latest failure replaces an older one.
//
// # Key bindings
//
//	1 / 2        courses / participants tab
//	←/h →/l      previous / next tab
//	n            focus the create form
//	tab          next field
//	enter        submit the focused form
//	/            focus the id lookup (courses)
//	c            clear the lookup result
//	r            refresh the list
//	d / x        delete the highlighted row
//	y / Y        copy the highlighted id / the lookup JSON
//	esc          leave a field, or dismiss the error banner
//	L            activity log overlay
//	?            help
//	q            quit
//
// The TUI is started by the root command; the CLI subcommands cover the
// same operations non-interactively.
package tui
