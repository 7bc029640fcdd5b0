// Package textutil sanitizes the user-supplied strings that end up in
// publish paths: representation names and template token values such as
// variants. Sanitized names keep destination paths portable across
// filesystems.
package textutil
