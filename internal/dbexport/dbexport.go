// Package dbexport loads a parsed catalog into Postgres so other
// tooling can query it with SQL.
package dbexport

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"

	"github.com/LilChaewon/Schedule-Wizard/internal/course"
)

const (
	envPostgresDBKey       = "SW_POSTGRES_DB"
	envPostgresUserKey     = "SW_POSTGRES_USER"
	envPostgresPasswordKey = "SW_POSTGRES_PASSWORD"
	envPostgresHostKey     = "SW_POSTGRES_HOST"
	envPostgresPortKey     = "SW_POSTGRES_PORT"
)

var migrations = &migrate.FileMigrationSource{
	Dir: "migrations",
}

// Open validates the SW_POSTGRES_* environment and connects.
func Open() (*sqlx.DB, error) {
	envKeys := []string{envPostgresDBKey, envPostgresUserKey, envPostgresPasswordKey, envPostgresHostKey, envPostgresPortKey}
	for _, key := range envKeys {
		val, ok := os.LookupEnv(key)
		if !ok || val == "" {
			return nil, errors.Errorf("%s is not set or empty", key)
		}
	}

	db, err := sqlx.Open("postgres", fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv(envPostgresHostKey),
		os.Getenv(envPostgresPortKey),
		os.Getenv(envPostgresUserKey),
		os.Getenv(envPostgresPasswordKey),
		os.Getenv(envPostgresDBKey),
	))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return db, nil
}

// Migrate applies the schema migrations.
func Migrate(db *sqlx.DB) error {
	appliedCount, err := migrate.Exec(db.DB, "postgres", migrations, migrate.Up)
	if err != nil {
		return errors.WithStack(err)
	}
	logrus.Infof("applied %v migrations", appliedCount)
	return nil
}

// Export writes the catalog to the database in one transaction,
// replacing any previous load of the same term.
func Export(db *sqlx.DB, cat *course.Catalog) error {
	now := time.Now()

	tx, err := db.Begin()
	if err != nil {
		return errors.WithStack(err)
	}

	if err := clearTerm(tx, cat.Semester, cat.Year); err != nil {
		return rollback(tx, err)
	}
	for _, crs := range cat.Courses {
		if err := insertCourse(tx, crs, now); err != nil {
			return rollback(tx, err)
		}
	}
	for _, slot := range cat.Slots {
		if err := insertSlot(tx, slot); err != nil {
			return rollback(tx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.WithStack(err)
	}
	logrus.WithFields(logrus.Fields{
		"courses": len(cat.Courses),
		"slots":   len(cat.Slots),
	}).Info("catalog exported")
	return nil
}

func rollback(tx *sql.Tx, err error) error {
	if rollbackErr := tx.Rollback(); rollbackErr != nil {
		return errors.Wrapf(err, "rollback also failed: %v", rollbackErr)
	}
	return err
}

func clearTerm(tx *sql.Tx, semester string, year int) error {
	if _, err := tx.Exec(`delete from course_times where course_id in (select id from courses where semester = $1 and year = $2)`, semester, year); err != nil {
		return errors.WithStack(err)
	}
	if _, err := tx.Exec(`delete from courses where semester = $1 and year = $2`, semester, year); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func insertCourse(tx *sql.Tx, c course.Course, now time.Time) error {
	_, err := tx.Exec(`insert into courses (
		id, course_code, course_name, professor, credits, department, grade_level, max_students, current_students, semester, year, section_number, notes, created_at
		) values (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)`,
		c.ID,
		c.CourseCode,
		c.CourseName,
		c.Professor,
		c.Credits,
		c.Department,
		c.GradeLevel,
		c.MaxStudents,
		newNullInt(c.CurrentStudents),
		c.Semester,
		c.Year,
		c.SectionNumber,
		newNullString(c.Notes),
		now,
	)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func insertSlot(tx *sql.Tx, s course.TimeSlot) error {
	_, err := tx.Exec(`insert into course_times (
		id, course_id, day_of_week, start_time, end_time, room
		) values (
		$1, $2, $3, $4, $5, $6
		)`,
		s.ID,
		s.CourseID,
		s.DayOfWeek,
		s.StartTime,
		s.EndTime,
		newNullString(s.Room),
	)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func newNullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func newNullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
