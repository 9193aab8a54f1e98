package domain

import (
	interfaces "runmate/internal/domain/interfaces"
	types "runmate/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	UserID             = types.UserID
	RaceID             = types.RaceID
	EventID            = types.EventID
	GroupID            = types.GroupID
	MatchID            = types.MatchID
	ConversationID     = types.ConversationID
	User               = types.User
	ProfileUpdate      = types.ProfileUpdate
	Session            = types.Session
	Credentials        = types.Credentials
	Registration       = types.Registration
	Race               = types.Race
	Event              = types.Event
	NewEvent           = types.NewEvent
	Group              = types.Group
	NewGroup           = types.NewGroup
	Match              = types.Match
	Conversation       = types.Conversation
	Message            = types.Message
	Plan               = types.Plan
	Subscription       = types.Subscription
	SubscriptionStatus = types.SubscriptionStatus
	PushRegistration   = types.PushRegistration
	SignupStep         = types.SignupStep
	SignupDraft        = types.SignupDraft
	CredentialsStep    = types.CredentialsStep
	ProfileStep        = types.ProfileStep
	RunningStep        = types.RunningStep
	LocationStep       = types.LocationStep
	PhotosStep         = types.PhotosStep
	ReviewStep         = types.ReviewStep
)

// Wizard steps, in order.
const (
	StepCredentials = types.StepCredentials
	StepProfile     = types.StepProfile
	StepRunning     = types.StepRunning
	StepLocation    = types.StepLocation
	StepPhotos      = types.StepPhotos
	StepReview      = types.StepReview
	StepSubmitted   = types.StepSubmitted
)

// Subscription lifecycle states.
const (
	SubscriptionIncomplete = types.SubscriptionIncomplete
	SubscriptionActive     = types.SubscriptionActive
	SubscriptionCanceled   = types.SubscriptionCanceled
	SubscriptionPastDue    = types.SubscriptionPastDue
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AuthAPI      = interfaces.AuthAPI
	MatchAPI     = interfaces.MatchAPI
	MessageAPI   = interfaces.MessageAPI
	ListingAPI   = interfaces.ListingAPI
	BillingAPI   = interfaces.BillingAPI
	APIClient    = interfaces.APIClient
	SessionStore = interfaces.SessionStore
	DraftStore   = interfaces.DraftStore
)
