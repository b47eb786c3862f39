package simdcsv

// SplitRecords cuts data into records and raw fields using the structural
// index. Each field is a subslice of data: quotes are kept in place and
// doubled quotes are not unescaped. data must be the same bytes the index
// was scanned from.
//
// A field ends at each structural offset; a record ends at each newline. A
// final field with no trailing newline still yields a record.
func (p *ParsedCsv) SplitRecords(data []byte) [][][]byte {
	var records [][][]byte
	var record [][]byte

	start := 0
	for _, off := range p.indexes {
		record = append(record, data[start:off])
		if data[off] == '\n' {
			records = append(records, record)
			record = nil
		}
		start = int(off) + 1
	}

	if start < len(data) {
		// Trailing field without a newline.
		record = append(record, data[start:])
	} else if len(record) > 0 {
		// Input ended on a comma: empty trailing field.
		record = append(record, data[len(data):])
	}
	if len(record) > 0 {
		records = append(records, record)
	}
	return records
}
