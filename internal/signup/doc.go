// Package signup implements the account creation wizard as an explicit
// step-indexed state machine.
//
// States are the wizard steps, in order:
//
//	credentials → profile → running → location → photos → review → submitted
//
// Next validates the payload for the current step, records it and advances;
// Back steps one state back. Invalid payloads never change the state. After
// every accepted transition the draft is persisted (encrypted) so the wizard
// can resume where the user left off. Submit is only allowed from review and
// is the single transition into the terminal submitted state.
package signup
