// Package humadocs provides documentation helpers for HTTP APIs built on
// huma (github.com/danielgtaylor/huma/v2). It covers three concerns:
//
// Operation transforms attach OpenAPI metadata (summary, description,
// tags, deprecation) to operations at registration time:
//
//	huma.Register(api, humadocs.WithDocs(op, humadocs.RouteInfo(
//	    "List users",
//	    "Returns every user visible to the caller.",
//	)), listUsers)
//
// The docsgen generator (cmd/docsgen) derives those transforms from
// handler doc comments, so route documentation lives next to the handler:
//
//	// ListUsers returns every user visible to the caller.
//	// Results are ordered by creation time.
//	//
//	//docsgen:operation tag="Users"
//	func ListUsers(ctx context.Context, in *ListUsersInput) (*ListUsersOutput, error) { ... }
//
// generates a companion opDocsListUsers() Transform in the same package.
//
// Router carriers accumulate operations before an API exists and stamp a
// shared tag on everything registered through them:
//
//	users := humadocs.NewTagRouter("Users")
//	humadocs.Add(users, listOp, listUsers, opDocsListUsers())
//	humadocs.Add(users, createOp, createUser)
//	users.Router().Mount(api)
//
// Output shims adapt small response values (no content, extra headers,
// status override, plain text) to both the wire and the generated
// documentation, keeping the two views in agreement.
package humadocs
