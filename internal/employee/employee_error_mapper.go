package employee

import (
	"database/sql"
	"errors"
	"strings"

	employeeerrors "github.com/Ezra12363/Conge-sub001/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch {
			case strings.Contains(pgErr.ConstraintName, "matricule"):
				return employeeerrors.ErrMatriculeAlreadyUsed
			case strings.Contains(pgErr.ConstraintName, "email"):
				return employeeerrors.ErrEmailAlreadyUsed
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "matricule") {
		return employeeerrors.ErrMatriculeAlreadyUsed
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "email") {
		return employeeerrors.ErrEmailAlreadyUsed
	}

	return err
}
