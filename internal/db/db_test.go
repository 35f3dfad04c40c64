package db_test

import (
	"context"
	"database/sql"
	"gotodo/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Create", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username"\) VALUES \(\$1\) RETURNING "id"$`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("should insert the record and fill its id", func() {
				record := Test{Username: "Alice"}
				err := testDB.Create(context.Background(), &record)
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the insert violates a unique constraint", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*`).
					WillReturnError(gorm.ErrDuplicatedKey)
				mock.ExpectRollback()
			})

			It("should return ErrDuplicate", func() {
				err := testDB.Create(context.Background(), &Test{Username: "Alice"})
				Expect(err).To(MatchError(db.ErrDuplicate))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE .username. = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), map[string]any{"username": "Alice"}, &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE .username. = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), map[string]any{"username": "Ghost"}, &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE .username. = \$1 ORDER BY id DESC.*`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(2, "Alice").
						AddRow(1, "Alice"))
			})

			It("should return all matching records in the requested order", func() {
				var results []Test
				err := testDB.GetAllBy(context.Background(), map[string]any{"username": "Alice"}, "id DESC", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].ID).To(Equal(uint(2)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE .username.*`).
					WithArgs("Invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAllBy(context.Background(), map[string]any{"username": "Invalid"}, "", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("Updates", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`^UPDATE "tests" SET "username"=\$1 WHERE "id" = \$2$`).
				WithArgs("Bob", 1).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		})

		It("should update only the given fields", func() {
			err := testDB.Updates(context.Background(), &Test{ID: 1}, map[string]any{"username": "Bob"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("DeleteWhere", func() {
		When("a row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^DELETE FROM "tests" WHERE .username. = \$1$`).
					WithArgs("Alice").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should report one affected row", func() {
				affected, err := testDB.DeleteWhere(context.Background(), &Test{}, map[string]any{"username": "Alice"})
				Expect(err).NotTo(HaveOccurred())
				Expect(affected).To(Equal(int64(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^DELETE FROM "tests" WHERE .username. = \$1$`).
					WithArgs("Ghost").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should report zero affected rows", func() {
				affected, err := testDB.DeleteWhere(context.Background(), &Test{}, map[string]any{"username": "Ghost"})
				Expect(err).NotTo(HaveOccurred())
				Expect(affected).To(Equal(int64(0)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
