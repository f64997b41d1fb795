// SPDX-License-Identifier: MIT

package align

// IndentSteps flattens the steps of edits in order, prefixing each line.
func IndentSteps(edits []Edit, prefix string) []string {
	out := make([]string, 0, StepCount(edits))
	for i := range edits {
		for _, s := range edits[i].Steps {
			out = append(out, prefix+s)
		}
	}
	return out
}

// StepCount returns the number of step lines across edits.
func StepCount(edits []Edit) int {
	var n int
	for i := range edits {
		n += len(edits[i].Steps)
	}
	return n
}
