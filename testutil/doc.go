// Package testutil provides a fake PromoStandards endpoint for tests.
//
// Server is an httptest server that records every SOAP request it receives
// and answers with a canned reply:
//
//	func TestPricing(t *testing.T) {
//	    srv := testutil.NewServer(t)
//	    srv.Respond(http.StatusOK, testutil.Envelope(`<GetConfigurationAndPricingResponse/>`))
//	    // point the client at srv.URL ...
//	    req := srv.LastRequest()
//	}
//
// The server is closed automatically when the test ends.
package testutil
