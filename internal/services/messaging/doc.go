// Package messaging reads and writes chat threads and keeps the shared
// unread counter in step with the inbox.
package messaging
