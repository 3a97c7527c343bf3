// Package shell persists Pushover credentials in the user's shell startup file.
// It detects the login shell from $SHELL, picks the startup file (.bashrc,
// .zshrc, config.fish, ...) and maintains a single marker-delimited block of
// export statements (export for bash/zsh, set -gx for fish).
package shell
