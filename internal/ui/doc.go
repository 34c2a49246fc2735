// Package ui contains the Bubble Tea program that renders the stacked menu
// popup.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes, animation frames, catalog
//     reloads).
//   - Navigation helpers (navigation.go) translate keys and item actions into
//     navstack.Stack operations: push, pop, remove-below and clear. Filter
//     helpers (input.go) keep text entry separate from stack handling.
//   - finishUpdate appends the animator's next frame tick while transitions
//     run and quits once the stack has ended and the last close settled.
//
// State ownership:
//   - The navstack.Stack owns panel order and lifecycle. Each panel carries
//     its internal/ui/state.Level (items, filter, cursor, viewport) in its
//     data slot, so a hidden panel keeps its cursor until it is revealed.
//   - Model implements navstack.Backdrop; the rounded frame is drawn only
//     while the stack is non-empty.
//   - anim.Animator reports per-panel open progress, which the view turns
//     into a slide-in offset.
//
// Backend interactions:
//   - An optional backend.Watcher streams catalog reloads; the model swaps in
//     the new catalog and refreshes every stacked panel whose kind survives.
//   - History and Restore convert the stack to and from session.History.
package ui
