package gateway

import "errors"

// One sentinel per remote action. The messages double as the user-facing
// notification text, so they stay in the UI's language.
var (
	ErrFetchFailed     = errors.New("gagal mengambil data penjualan")
	ErrCreateFailed    = errors.New("gagal menambah data penjualan")
	ErrUpdateFailed    = errors.New("gagal mengupdate data penjualan")
	ErrDeleteFailed    = errors.New("gagal menghapus data penjualan")
	ErrUploadFailed    = errors.New("gagal mengupload file")
	ErrDownloadFailed  = errors.New("gagal mengunduh file")
	ErrInvalidResponse = errors.New("respon webhook tidak valid")
)
