package documents_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/JaimeStill/file-flow/internal/documents"
)

func TestExport_Workbook(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(q("FROM public.documents d")).
		WillReturnRows(sqlmock.NewRows(documentColumns).
			AddRow(documentRow(3, "archived", "Carol")...).
			AddRow(documentRow(2, "pending", nil)...))

	data, err := repo.Export(context.Background(), documents.Filters{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{documents.ExportSheet}, f.GetSheetList())

	rows, err := f.GetRows(documents.ExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, documents.ExportHeader, rows[0])

	assert.Equal(t, "3", rows[1][0])
	assert.Equal(t, "DOC-1", rows[1][1])
	assert.Equal(t, "Budget", rows[1][2])
	assert.Equal(t, "", rows[1][3])
	assert.Equal(t, "2024-03-20", rows[1][6])
	assert.Equal(t, "2024-03-14 10:30:00", rows[1][7])
	assert.Equal(t, "archived", rows[1][8])
	assert.Equal(t, "Carol", rows[1][10])
	assert.Equal(t, "2024-03-15 09:30:00", rows[1][11])

	assert.Equal(t, "pending", rows[2][8])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExport_EmptyRegister(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(q("FROM public.documents d")).
		WillReturnRows(sqlmock.NewRows(documentColumns))

	data, err := repo.Export(context.Background(), documents.Filters{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(documents.ExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, documents.ExportHeader, rows[0])
}
