package loan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"libris/internal/domain/loan"
)

const exportSheet = "BooksLoanList"

var exportHeadings = []string{"Member", "Books", "Receive Date", "Return Date", "Status"}

// Export renders every loan into an xlsx workbook: resolved member name,
// resolved book titles, dates, and status, in natural storage order.
// Read-only aggregation; no lifecycle side effects.
func (s *Service) Export(ctx context.Context) ([]byte, string, error) {
	loans, err := s.loans.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}

	bookNames, err := s.resolveBookNames(ctx, loans)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName(f.GetSheetName(0), exportSheet)

	headingStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create heading style: %w", err)
	}

	for i, heading := range exportHeadings {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellStr(exportSheet, cell, heading); err != nil {
			return nil, "", fmt.Errorf("failed to write heading: %w", err)
		}
		if err := f.SetCellStyle(exportSheet, cell, cell, headingStyle); err != nil {
			return nil, "", fmt.Errorf("failed to style heading: %w", err)
		}
	}

	memberNames := map[uint]string{}
	for row, l := range loans {
		memberName, ok := memberNames[l.MemberID]
		if !ok {
			memberName = s.resolveMemberName(ctx, l.MemberID)
			memberNames[l.MemberID] = memberName
		}

		titles := make([]string, 0, len(l.Books))
		for _, id := range l.Books {
			if name, ok := bookNames[id]; ok {
				titles = append(titles, name)
			}
		}

		values := []string{
			memberName,
			strings.Join(titles, ", "),
			l.ReceiveDate.Format("Mon Jan 02 2006"),
			l.ReturnDate.Format("Mon Jan 02 2006"),
			l.Status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellStr(exportSheet, cell, v); err != nil {
				return nil, "", fmt.Errorf("failed to write loan row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	fileName := time.Now().Format("Mon-Jan-02-2006") + "-" + exportSheet + ".xlsx"
	return buf.Bytes(), fileName, nil
}

// resolveBookNames joins the union of all referenced book ids against the
// book store in a single query.
func (s *Service) resolveBookNames(ctx context.Context, loans []*loan.BookLoan) (map[uint]string, error) {
	seen := map[uint]bool{}
	ids := []uint{}
	for _, l := range loans {
		for _, id := range l.Books {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	books, err := s.books.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(books))
	for _, b := range books {
		names[b.ID] = b.Name
	}
	return names, nil
}

// resolveMemberName falls back to an empty name when the member record is
// gone; the export keeps the row rather than failing the report.
func (s *Service) resolveMemberName(ctx context.Context, memberID uint) string {
	u, err := s.users.GetByID(ctx, memberID)
	if err != nil || u == nil {
		s.logger.Warnw("failed to resolve member for export", "member_id", memberID, "error", err)
		return ""
	}
	return u.Name
}
