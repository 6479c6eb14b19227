// Package session owns the client-side authentication lifecycle for the
// CommerceAI admin console: the bearer credential, the current user profile
// and the derived authentication status. All mutation funnels through four
// operations — Bootstrap, Login, Register and Logout — so the persisted
// credential slot and the credential attached to outgoing requests always
// change together with the observable state.
//
// # Architecture
//
// A Manager holds the state behind a single mutex. It relies on an API to
// talk to the backend (token exchange, registration, profile fetch) and on a
// Store to persist the single bearer-token slot across restarts. The Manager
// exposes its current token via Token, which the HTTP client consults per
// request; the credential therefore lives exactly as long as the session that
// produced it.
//
//	┌──────────┐  Token()  ┌───────────┐
//	│ apiclient│ ◄──────── │  Manager  │
//	└──────────┘           └───────────┘
//	                         │        │
//	                   API calls    Store (memory, file)
//
// # State machine
//
// StatusAnonymous is the start state when no credential is stored.
// Bootstrap moves a client with a stored credential through
// StatusBootstrapping into StatusAuthenticated (profile fetched) or
// StatusUnauthenticated (credential rejected; the slot is wiped and the
// failure is swallowed, since an expired session on startup is routine).
// Login and Register move any non-authenticated state to
// StatusAuthenticated; Logout always lands in StatusAnonymous.
//
// Every mutating operation bumps an internal generation counter and each
// asynchronous completion is applied only if its generation is still
// current, so a slow login resolving after a logout can never resurrect the
// authenticated state.
//
// # Usage
//
//	store, _ := session.NewFileStore("")
//	mgr := session.New(api, session.WithStore(store))
//	client.SetCredentialFunc(mgr.Token)
//
//	mgr.Bootstrap(ctx) // before any protected view renders
//	if err := mgr.Login(ctx, "a@b.com", "secret"); err != nil { ... }
//
// Consumers observe changes through OnChange or poll Snapshot; route guards
// must hold rendering while Loading reports true.
package session
