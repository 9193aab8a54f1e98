// Package billing lists subscription plans and manages the caller's
// subscription through the backend's payment proxy.
package billing
