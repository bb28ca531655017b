// Package backoffice is the Go client for the bookstore back-office REST API:
// inventory, procurement, point-of-sale, the financial ledger, and user
// administration behind a username/password login.
//
// Session lifecycle:
//   - TokenStore persists the single bearer credential across restarts. At most
//     one credential is active at a time; saving overwrites, clearing is
//     idempotent.
//   - Client is the single HTTP entry point. A request decorator attaches the
//     current credential to every outgoing call; a response handler reacts to
//     authentication failures by clearing the store and forcing navigation to
//     the login view, regardless of which caller issued the request.
//   - SessionController owns the bootstrap/login/logout state machine, decodes
//     the credential's expiry claim, and holds the authenticated Principal.
//     Backend failures during bootstrap always resolve to an unauthenticated
//     session, never a crash.
//   - RouteGuard decides per navigation whether a view may render, redirecting
//     unauthenticated sessions to the login view and silently downgrading non
//     super admins away from restricted sections.
//
// Domain services (BooksService, PurchasesService, SalesService,
// FinanceService, UsersService) are thin typed wrappers over Client; they share
// its credential handling and error policy.
package backoffice
