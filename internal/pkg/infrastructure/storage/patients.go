package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/careflow/patient-monitoring/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddPatient(ctx context.Context, p types.Patient) error {
	if p.ID == "" {
		return ErrNoID
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO patients (patient_id, first_name, last_name, date_of_birth, gender, email, phone, address, active)
		VALUES (@patient_id, @first_name, @last_name, @date_of_birth, @gender, @email, @phone, @address, @active);
	`, pgx.NamedArgs{
		"patient_id":    p.ID,
		"first_name":    p.FirstName,
		"last_name":     p.LastName,
		"date_of_birth": p.DateOfBirth,
		"gender":        p.Gender,
		"email":         p.Email,
		"phone":         p.Phone,
		"address":       p.Address,
		"active":        p.Active,
	})
	if err != nil {
		if isDuplicateKeyErr(err) {
			return ErrAlreadyExist
		}
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) UpdatePatient(ctx context.Context, p types.Patient) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE patients
		SET first_name=@first_name, last_name=@last_name, date_of_birth=@date_of_birth,
		    gender=@gender, email=@email, phone=@phone, address=@address, active=@active,
		    modified_on=@modified_on
		WHERE patient_id=@patient_id;
	`, pgx.NamedArgs{
		"patient_id":    p.ID,
		"first_name":    p.FirstName,
		"last_name":     p.LastName,
		"date_of_birth": p.DateOfBirth,
		"gender":        p.Gender,
		"email":         p.Email,
		"phone":         p.Phone,
		"address":       p.Address,
		"active":        p.Active,
		"modified_on":   time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) GetPatient(ctx context.Context, patientID string) (types.Patient, error) {
	p := types.Patient{}

	err := s.pool.QueryRow(ctx, `
		SELECT patient_id, first_name, last_name, date_of_birth, gender, email, phone, address, active, created_on, modified_on
		FROM patients
		WHERE patient_id=@patient_id;
	`, pgx.NamedArgs{"patient_id": patientID}).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender,
		&p.Email, &p.Phone, &p.Address, &p.Active, &p.CreatedAt, &p.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Patient{}, ErrNoRows
		}
		return types.Patient{}, err
	}

	return p, nil
}

func (s *Storage) QueryPatients(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Patient], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where("created_on")

	query := fmt.Sprintf(`
		SELECT patient_id, first_name, last_name, date_of_birth, gender, email, phone, address, active, created_on, modified_on, count(*) OVER () AS total
		FROM patients
		%s
		ORDER BY %s %s
		%s;
	`, where, condition.SortBy("last_name"), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Patient]{}, err
	}

	var (
		p     types.Patient
		total int64
	)

	patients := make([]types.Patient, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender,
		&p.Email, &p.Phone, &p.Address, &p.Active, &p.CreatedAt, &p.ModifiedAt, &total,
	}, func() error {
		patients = append(patients, p)
		return nil
	})
	if err != nil {
		return types.Collection[types.Patient]{}, err
	}

	return types.Collection[types.Patient]{
		Data:       patients,
		Count:      uint64(len(patients)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}
