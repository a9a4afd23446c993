// Package mocks provides centralized test doubles for the store and auth
// interfaces.
//
// Two styles live here:
//
//   - Function-field mocks (MockJWTService, MockPinger): set the Fn field
//     to control a call, or the default value fields for the common case.
//   - In-memory stores (ServiceStore, ReviewStore, UserStore): working
//     implementations of the store interfaces with the same filtering,
//     ordering and acknowledgment semantics as the MongoDB stores. Set Err
//     to make every call fail.
//
// TestifyMockServiceStore uses testify's mock.Mock for tests that need to
// assert exact call arguments.
//
// Usage:
//
//	services := mocks.NewServiceStore()
//	handler := api.NewServiceHandler(services, validate, logger)
package mocks
