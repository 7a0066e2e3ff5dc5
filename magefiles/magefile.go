//go:build mage

// Package main provides build targets for the mealweek project using Mage.
//
// Usage:
//
//	mage build            Compile mealweek binary to bin/
//	mage test:all         Run all tests (unit + integration)
//	mage test:unit        Run only unit tests (exclude integration)
//	mage test:integration Run only integration tests (builds first)
//	mage test:coverage    Run tests with a coverage summary
//	mage lint             Run golangci-lint
//	mage clean            Remove build artifacts
//	mage install          Install mealweek to GOPATH/bin
package main
