// Package mocks provides test doubles for the store interfaces.
//
// MockUserStore and MockPostStore use function fields: set only the methods a
// test cares about, the rest return empty results. TestifyMockPostStore is a
// testify/mock implementation for tests that assert on call arguments.
package mocks
