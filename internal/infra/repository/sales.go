package repository

import (
	"context"

	"basecampus-api/internal/infra"
	"basecampus-api/internal/infra/db"
	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// SalesRepository covers payment links and course enrollments.
type SalesRepository struct {
	db db.DBTX
}

func NewSalesRepository(pool db.DBTX) *SalesRepository {
	return &SalesRepository{db: pool}
}

const selectPaymentLinkSQL = `
	SELECT id, course_id, mentor_id, seller_tag, whatsapp_group_link, price_override_cents,
	       active, views, sales_count, created_at
	FROM payment_links
`

func (r *SalesRepository) CreatePaymentLink(ctx context.Context, tx db.DBTX, courseID, mentorID uuid.UUID, sellerTag, whatsappGroupLink *string, priceOverride *int64) (uuid.UUID, error) {
	id := uuid.New()
	_, err := tx.Exec(ctx, `
		INSERT INTO payment_links (id, course_id, mentor_id, seller_tag, whatsapp_group_link, price_override_cents, active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
	`, id, courseID, mentorID, sellerTag, whatsappGroupLink, priceOverride)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment link", err)
	}
	return id, nil
}

func (r *SalesRepository) FindPaymentLink(ctx context.Context, tx db.DBTX, id uuid.UUID) (*readmodel.PaymentLinkRM, error) {
	rm, err := scanPaymentLink(tx.QueryRow(ctx, selectPaymentLinkSQL+` WHERE id = $1`, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment link not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment link", err)
	}
	return rm, nil
}

func (r *SalesRepository) SetPaymentLinkActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) error {
	tag, err := tx.Exec(ctx, `UPDATE payment_links SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment link", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment link not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SalesRepository) DeletePaymentLink(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM payment_links WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete payment link", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment link not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SalesRepository) IncrementPaymentLinkViews(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	if _, err := tx.Exec(ctx, `UPDATE payment_links SET views = views + 1 WHERE id = $1`, id); err != nil {
		return infra.WrapRepoErr("failed to increment link views", err)
	}
	return nil
}

func (r *SalesRepository) IncrementPaymentLinkSales(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	if _, err := tx.Exec(ctx, `UPDATE payment_links SET sales_count = sales_count + 1 WHERE id = $1`, id); err != nil {
		return infra.WrapRepoErr("failed to increment link sales", err)
	}
	return nil
}

func (r *SalesRepository) ListPaymentLinksByMentor(ctx context.Context, mentorID uuid.UUID) ([]*readmodel.PaymentLinkRM, error) {
	rows, err := r.db.Query(ctx, selectPaymentLinkSQL+` WHERE mentor_id = $1 ORDER BY created_at DESC`, mentorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payment links", err)
	}
	defer rows.Close()

	var result []*readmodel.PaymentLinkRM
	for rows.Next() {
		rm, err := scanPaymentLink(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment link row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment link rows", err)
	}
	return result, nil
}

func (r *SalesRepository) FindEnrollment(ctx context.Context, tx db.DBTX, userID, courseID uuid.UUID) (*readmodel.EnrollmentRM, error) {
	var rm readmodel.EnrollmentRM
	err := tx.QueryRow(ctx, `
		SELECT id, user_id, course_id, payment_link_id, amount_paid_cents, payment_status, enrolled_at
		FROM course_enrollments
		WHERE user_id = $1 AND course_id = $2
	`, userID, courseID).Scan(
		&rm.ID, &rm.UserID, &rm.CourseID, &rm.PaymentLinkID, &rm.AmountPaid, &rm.PaymentStatus, &rm.EnrolledAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("enrollment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find enrollment", err)
	}
	return &rm, nil
}

func (r *SalesRepository) CreateEnrollment(ctx context.Context, tx db.DBTX, userID, courseID uuid.UUID, paymentLinkID *uuid.UUID, amountPaidCents int64, paymentStatus string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := tx.Exec(ctx, `
		INSERT INTO course_enrollments (id, user_id, course_id, payment_link_id, amount_paid_cents, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, userID, courseID, paymentLinkID, amountPaidCents, paymentStatus)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create enrollment", err)
	}
	return id, nil
}

func (r *SalesRepository) ListEnrollmentsByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.EnrollmentRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, course_id, payment_link_id, amount_paid_cents, payment_status, enrolled_at
		FROM course_enrollments
		WHERE user_id = $1
		ORDER BY enrolled_at DESC
	`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list enrollments", err)
	}
	defer rows.Close()

	var result []*readmodel.EnrollmentRM
	for rows.Next() {
		var rm readmodel.EnrollmentRM
		if err := rows.Scan(&rm.ID, &rm.UserID, &rm.CourseID, &rm.PaymentLinkID, &rm.AmountPaid, &rm.PaymentStatus, &rm.EnrolledAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan enrollment row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate enrollment rows", err)
	}
	return result, nil
}

// ListStudentProgress joins enrollments with lesson completion counts
// for the mentor's progress dashboard. Quiz averages are filled in by
// the caller.
func (r *SalesRepository) ListStudentProgress(ctx context.Context, courseID uuid.UUID) ([]*readmodel.StudentProgressRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.user_id, u.full_name, u.email, COALESCE(u.avatar_url, ''), e.enrolled_at,
		       (SELECT COUNT(*)
		        FROM lesson_completions lc
		        JOIN lessons l ON l.id = lc.lesson_id
		        JOIN course_modules m ON m.id = l.module_id
		        WHERE lc.user_id = e.user_id AND m.course_id = e.course_id) AS completed_lessons,
		       (SELECT COUNT(*)
		        FROM lessons l
		        JOIN course_modules m ON m.id = l.module_id
		        WHERE m.course_id = e.course_id) AS total_lessons
		FROM course_enrollments e
		JOIN users u ON u.id = e.user_id
		WHERE e.course_id = $1
		ORDER BY e.enrolled_at ASC
	`, courseID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list student progress", err)
	}
	defer rows.Close()

	var result []*readmodel.StudentProgressRM
	for rows.Next() {
		var rm readmodel.StudentProgressRM
		if err := rows.Scan(&rm.UserID, &rm.FullName, &rm.Email, &rm.AvatarURL, &rm.EnrolledAt, &rm.CompletedLessons, &rm.TotalLessons); err != nil {
			return nil, infra.WrapRepoErr("failed to scan progress row", err)
		}
		if rm.TotalLessons > 0 {
			rm.ProgressPercentage = float64(rm.CompletedLessons) / float64(rm.TotalLessons) * 100
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate progress rows", err)
	}
	return result, nil
}

func scanPaymentLink(row rowScanner) (*readmodel.PaymentLinkRM, error) {
	var rm readmodel.PaymentLinkRM
	if err := row.Scan(
		&rm.ID, &rm.CourseID, &rm.MentorID, &rm.SellerTag, &rm.WhatsappGroupLink,
		&rm.PriceOverride, &rm.Active, &rm.Views, &rm.SalesCount, &rm.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rm, nil
}
