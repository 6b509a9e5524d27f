package vtcore

// DCS and SOS/PM/APC dispatch. The teacher never implemented DCS at all
// (its parser.go has no hook/put/unhook handling); vtcore's shape is
// grounded on the event contract the parser already exposes (EventDCSHook /
// EventDCSPut / EventDCSUnhook, spec §3 "Parser event") and treats DECRQSS
// ($q) as the one DCS request worth answering from the interpreter itself.

func (it *Interpreter) handleDCSHook(e ParserEvent) []TerminalUpdate {
	it.dcsActive = true
	it.dcsFinal = e.Final
	it.dcsParams = append([]int(nil), e.Params...)
	it.dcsIntermediates = append([]byte(nil), e.Intermediates...)
	it.dcsPayload = it.dcsPayload[:0]
	return []TerminalUpdate{{
		Kind:             UpdateDCSStart,
		DCSFinal:         e.Final,
		DCSParams:        it.dcsParams,
		DCSIntermediates: it.dcsIntermediates,
	}}
}

func (it *Interpreter) handleDCSPut(b []byte) []TerminalUpdate {
	if !it.dcsActive {
		return nil
	}
	it.dcsPayload = append(it.dcsPayload, b...)
	return []TerminalUpdate{{Kind: UpdateDCSData, DCSData: string(b)}}
}

func (it *Interpreter) handleDCSUnhook() []TerminalUpdate {
	if !it.dcsActive {
		return nil
	}
	it.dcsActive = false
	out := []TerminalUpdate{{Kind: UpdateDCSEnd, DCSData: string(it.dcsPayload)}}

	if it.dcsFinal == 'q' && len(it.dcsIntermediates) == 1 && it.dcsIntermediates[0] == '$' {
		out = append(out, it.handleRequestStatusString(string(it.dcsPayload)))
	}
	it.dcsPayload = nil
	return out
}

// handleRequestStatusString answers DECRQSS (DCS $ q Pt ST) for the SGR
// request, the only request a headless core can answer meaningfully (spec
// §4.5, "DECRQSS"). Unknown requests get an invalid-request reply.
func (it *Interpreter) handleRequestStatusString(request string) TerminalUpdate {
	var reply string
	switch request {
	case "m":
		reply = "1$r0m"
	default:
		reply = "0$r"
	}
	return TerminalUpdate{Kind: UpdateResponse, ResponseBytes: buildDCSResponse(it.c1Transmission, reply)}
}

// handleSosPmApc records the last SOS/PM/APC string for host inspection
// (spec §3, "last SOS/PM/APC string"); vtcore has no built-in APC protocol.
func (it *Interpreter) handleSosPmApc(kind StringKind, payload []byte) []TerminalUpdate {
	it.lastSosPmApc = string(payload)
	return []TerminalUpdate{{Kind: UpdateSosPmApc, SosPmApcKind: kind, SosPmApcData: it.lastSosPmApc}}
}
