// Package command implements the headless front-end: the same transfer core
// as the window, driven from command line arguments and saving downloads
// straight to disk.
package command
