package orm

import (
	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// WithMySql stores the workspace in a MySQL database, so a team can share results.
// The DSN looks like user:pass@tcp(host:3306)/cogmeter.
func WithMySql(dsn string) (gorm.Dialector, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "invalid MySQL DSN")
	}

	if cfg.DBName == "" {
		return nil, errors.Errorf("missing database name in MySQL DSN %v", dsn)
	}

	cfg.ParseTime = true

	return gormmysql.New(gormmysql.Config{
		DSN:               cfg.FormatDSN(),
		DefaultStringSize: 512,
	}), nil
}
