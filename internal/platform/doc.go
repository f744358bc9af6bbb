package platform

// Package platform contains OS integration glue: recognising dropped audio
// and image files, and revealing files in the system file manager.
