// Package notifications registers this device for push notifications.
package notifications
