// Package ui is the Bubble Tea front-end for the picker. It drives the same
// selector.State as the raw key loop in internal/session, so filtering,
// marking and resolution behave identically in both.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry (key presses and window resizes).
//   - Key presses that map to a selector operation are applied directly;
//     everything else is forwarded to the bubbles text input, and a changed
//     value becomes the new query.
//   - Submit and cancel resolve the state and return tea.Quit. After that the
//     view is empty so the inline region disappears when the program exits.
//
// Harness feeds messages to a Model without a terminal, executing returned
// commands the way the Bubble Tea runtime would.
package ui
