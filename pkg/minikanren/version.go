package minikanren

// Version is the current version of this package.
const Version = "0.1.0"
