// Package oracle is a client for the WebAIM contrast checker API, used to
// cross-validate package wcag against an independent implementation.
//
// The service is queried with two 6-digit hex colors:
//
//	GET https://webaim.org/resources/contrastchecker/?fcolor=000000&bcolor=FFFFFF&api
//
// and answers with a wcag.Report:
//
//	{"ratio":21,"AA":"pass","AALarge":"pass","AAA":"pass","AAALarge":"pass"}
//
// A Client implements wcag.Verifier, so it plugs straight into
// wcag.CrossCheck. Nothing in package wcag depends on this package.
package oracle
