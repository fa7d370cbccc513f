// Package utils provides shared utility functions and constants
package utils

// ContextKeySession is the key used to store the visitor session id in the echo context
const ContextKeySession = "session"

// CookieName is the name of the visitor session cookie
const CookieName = "VaporisSession"
