// Package accept parses the HTTP content negotiation headers
// (Accept, Accept-Encoding and Accept-Language) and ranks the values a
// server can offer against the preferences a client sent.
//
// Parsing follows the RFC 9110 list, token, quoted-string and weight
// grammar. A header value is either parsed completely or rejected:
//
//	a, err := accept.ParseAccept("text/html, application/*;q=0.8, */*;q=0.1")
//	if err != nil {
//		// 400 Bad Request
//	}
//	best, err := a.Negotiate("application/json", "text/html")
//	// best == "text/html"
//
// Ranking prefers the most specific matching preference over the highest
// weight; weights only order candidates that matched equally specific
// preferences. A preference with q=0 rules its candidates out.
package accept
