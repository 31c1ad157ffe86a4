package editor

import "github.com/dshills/mvim/internal/history"

func insertCharOp(row, col int, payload string) history.Operation {
	return history.Operation{Type: history.InsertChar, Row: row, Col: col, Payload: payload}
}

func deleteCharOp(row, col int, removed byte) history.Operation {
	return history.Operation{Type: history.DeleteChar, Row: row, Col: col, Payload: string(removed)}
}

func insertLineOp(row int, payload string) history.Operation {
	return history.Operation{Type: history.InsertLine, Row: row, Payload: payload}
}

func deleteLineOp(row int, payload string) history.Operation {
	return history.Operation{Type: history.DeleteLine, Row: row, Payload: payload}
}

func replaceLineOp(row int, old, next string) history.Operation {
	return history.Operation{Type: history.ReplaceLine, Row: row, Payload: old, Alt: next}
}
