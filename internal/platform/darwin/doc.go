// Package darwin provides macOS window enumeration using CoreGraphics.
// All functionality requires CGo; on other builds the package is empty and
// no provider is registered.
package darwin
