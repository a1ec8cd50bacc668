package library

// Version is the circ release version.
const Version = "0.1.0"
