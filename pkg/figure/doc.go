// Package figure defines the figure model consumed by the render backend: the
// Figure interface each generator implements, the registry used for discovery,
// and the shared style palette (colors and font sizes) embedded at build time.
// Generators carry their data as package literals; nothing in this package
// reads external input at run time.
package figure
