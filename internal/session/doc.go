// Package session runs the interactive control loop of the trigger daemon.
//
// The loop prints a formatted status block at a fixed interval, reacts to
// single-character console commands (t: synthetic trigger, s: status,
// q: quit), and surfaces trigger and capture notices published on the
// event bus. It only reads aggregated state; all capture decisions stay
// with the trigger controller.
package session
