package ports

import "adlens/domain/dataset"

// ReaderPort loads a tabular dataset from external storage into a Table.
type ReaderPort interface {
	Read() (*dataset.Table, error)
}
