// Package ui is the Bubble Tea front end of dealtable.
//
// Core abstractions:
//   - View: a screen or region with its own model, update and view (Elm-style)
//   - Router: maps paths to views and keeps navigation history on a ViewStack
//   - TableHolderView: the "/" route; composes the data table and detail pane
//   - DataTableView: renders a datatable.Table and turns keys and clicks into toggles
//   - DetailPane: shows the single selected row
//   - SplitLayout / FocusManager: place the panes and rotate focus between them
//   - KeybindRegistry / KeyHandler: spacemacs-style leader key bindings
//   - OverlayStack: modal views such as the help overlay
package ui
