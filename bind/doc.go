// Package bind declares callable signatures and binds per-call arguments
// against them.
//
// A Signature is an explicit declaration of a callable's parameters,
// supplied by the host when it registers the callable for interception.
// Bind resolves one call's positional and keyword arguments into an
// Arguments set whose name lookup is uniform across positionally supplied,
// keyword-supplied, and default-filled parameters.
package bind
