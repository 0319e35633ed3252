package interfaces

import "errors"

// ErrDuplicateFilamentType is returned by IFilamentRepository.Create when
// the printer already lists the filament type. The unique index on
// (printer_id, filament_type) backs it at the storage layer.
var ErrDuplicateFilamentType = errors.New("filament type already listed for printer")
