// Package platform contains OS integration: locating the Downloads folder,
// writing downloaded bytes to disk and revealing or opening saved files.
package platform
