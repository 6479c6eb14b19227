// Package apiclient is the REST client for the CommerceAI backend. It
// covers the authentication endpoints consumed by pkg/session plus the
// resource surface of the admin console: products, orders, customers,
// stores, integrations, AI agents, email templates, account settings and
// dashboard metrics.
//
// The credential is attached per request through a CredentialFunc rather
// than a shared default header, so its lifetime is tied to whatever owns the
// func — in practice the session manager:
//
//	client, _ := apiclient.New("https://api.example.com/api/v1")
//	mgr := session.New(client, session.WithStore(store))
//	client.SetCredentialFunc(mgr.Token)
//
// Backend errors are decoded into *APIError carrying the HTTP status and the
// backend's detail message; IsAuthError and IsNotFound discriminate the
// common cases.
package apiclient
