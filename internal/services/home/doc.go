// Package home assembles the dashboard: top matches, the inbox with its
// unread total, and upcoming events, fetched concurrently.
package home
