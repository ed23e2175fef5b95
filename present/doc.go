// SPDX-License-Identifier: MIT

// Package present renders search results for people: the numbered
// "A and B starred in Title" narrative, the [metrics] block and a
// structured hop list shared by the JSON outputs.
//
// Output written to a terminal is coloured with lipgloss; anything else
// (files, pipes, buffers) gets plain text so it stays diff- and grep-able.
package present
