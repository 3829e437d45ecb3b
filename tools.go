//go:build tools

package tools

// This file records the developer tools used by the repository. It is not
// compiled into any binary.
//
// Mocks in *_test.go files follow the output of github.com/matryer/moq:
//
//	moq -out mocks_test.go -pkg notification . applicationRepo mailSender
//
// Migrations are applied with cmd/migrate, which embeds ./migrations.
