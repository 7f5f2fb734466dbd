package testutil

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go/modules/mysql"
)

// MySQLContainer wraps a mysql testcontainer.
type MySQLContainer struct {
	*mysql.MySQLContainer
	DSN string
}

// NewMySQLContainer creates a new MySQL container for testing.
func NewMySQLContainer(ctx context.Context) (*MySQLContainer, error) {
	container, err := mysql.Run(ctx,
		"mysql:8.0.36",
		mysql.WithDatabase("library_test"),
		mysql.WithUsername("library"),
		mysql.WithPassword("library"),
	)
	if err != nil {
		return nil, fmt.Errorf("start mysql container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "charset=utf8mb4", "parseTime=True", "loc=UTC")
	if err != nil {
		return nil, fmt.Errorf("get connection string: %w", err)
	}

	return &MySQLContainer{
		MySQLContainer: container,
		DSN:            dsn,
	}, nil
}
