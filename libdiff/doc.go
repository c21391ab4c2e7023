// Package libdiff produces line diffs of values in their printed form.
package libdiff
