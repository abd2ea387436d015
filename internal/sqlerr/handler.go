package sqlerr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// uniqueKeyRegex matches "<table>_<column>_key" / "<table>_<column>_ukey".
	uniqueKeyRegex = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

	// stillReferencedRegex matches the DETAIL of a delete blocked by a foreign key:
	//	Key (department_id)=(1) is still referenced from table "employees".
	stillReferencedRegex = regexp.MustCompile(`Key \((\w+)\)=\(.*\) is still referenced from table "(\w+)"`)
)

// ErrCode reports the mapped sqlerr.Code for a given error.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return MapCode(pgerr.Code)
	}
	return Other
}

// ConvertPgError converts a pgconn.PgError (raw Postgres error) into our custom sqlerr.Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		Detail:         src.Detail,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode creates consistent "application error codes" from DB errors.
//
//	employees + ForeignKeyViolation => EMPLOYEE_NOT_FOUND
//	managers  + UniqueViolation     => MANAGER_ALREADY_EXISTS
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	// Naive singularization, good enough for this schema.
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces an end-user-facing error message.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		// A delete blocked by RESTRICT rather than a dangling reference.
		if matches := stillReferencedRegex.FindStringSubmatch(sqlErr.Detail); len(matches) == 3 {
			return fmt.Sprintf("The %s is still referenced by %s records",
				getEntityName("", matches[1]), getEntityName(matches[2], ""))
		}
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		// "identifier" is replaced later when the column can be inferred.
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName tries to infer an entity name from table/column data.
//
// Priority rules:
//  1. column ending with "_id": "department_id" -> "Department"
//  2. table name, singularized: "employee_tasks" -> "Employee Task"
//  3. "record"
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts snake_case into Title Case.
//
//	"department_name" -> "Department Name"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation tries to infer the column name from a unique constraint name.
//
// Two conventions:
//
//  1. "unique_<table>_<column>"      unique_managers_department -> "department"
//  2. "<table>_<column>_(key|ukey)"  managers_email_key         -> "email"
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeyRegex.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// UserMessage returns the message a client should see for a failed store call.
//
// PostgreSQL constraint errors get the friendly wording used by HandleError;
// any other error keeps its own message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		if sqlErr.Code == Other {
			return sqlErr.Message
		}
		message := formatUserFriendlyMessage(sqlErr)
		if sqlErr.Code == UniqueViolation {
			if column := extractColumnForUniqueViolation(sqlErr.ConstraintName); column != "" {
				message = strings.ReplaceAll(message, "identifier", humanizeText(column))
			}
		}
		return message
	}

	switch {
	case errors.Is(err, context.Canceled):
		return "The request was cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out"
	}

	return err.Error()
}

// HandleError converts a low-level database error into an application-level error.
//
// Output:
//   - *errs.HTTPError: returned unchanged
//   - pgconn.PgError: errs.NewBadRequestError for constraint violations, 500 otherwise
//   - ErrNoRows: errs.NewNotFoundError
//   - anything else: errs.NewInternalServerError
//
// The global error handler calls it for errors that escaped the envelope
// (they should not, but the server must still answer in a stable shape).
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := UserMessage(err)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			return errs.NewBadRequestError(userMessage, false, &errorCode, nil, nil)

		case UniqueViolation:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors, nil)

		case CheckViolation:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
