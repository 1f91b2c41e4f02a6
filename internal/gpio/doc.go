// Package gpio claims GPIO lines through the Linux character device.
//
// Watcher turns rising edges on the flight controller's trigger line into
// callbacks, with pull-down bias and a kernel-side debounce hint applied
// at request time. OutputPin claims the status LED line and satisfies the
// indicator's Pin interface.
//
// Both types degrade per the daemon's startup policy: the caller decides
// whether a claim failure is fatal (trigger line) or merely disables a
// feature (status LED).
package gpio
