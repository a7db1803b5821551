package platform

// Package platform contains OS-level helpers: flat directory listing,
// destination existence checks and opening folders in the system file
// manager.
