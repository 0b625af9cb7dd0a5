package qdrant

import "github.com/qdrant/go-client/qdrant"

// translatePayload converts Qdrant's protobuf payload values into the
// plain map shape the core's result formatter reads. Integers stay int64;
// everything else lands on the JSON-ish types the formatter expects.
func translatePayload(payload map[string]*qdrant.Value) map[string]any {
	if len(payload) == 0 {
		return nil
	}
	result := make(map[string]any, len(payload))
	for key, value := range payload {
		result[key] = translateValue(value)
	}
	return result
}

func translateValue(v *qdrant.Value) any {
	switch kind := v.GetKind().(type) {
	case *qdrant.Value_StringValue:
		return kind.StringValue
	case *qdrant.Value_IntegerValue:
		return kind.IntegerValue
	case *qdrant.Value_DoubleValue:
		return kind.DoubleValue
	case *qdrant.Value_BoolValue:
		return kind.BoolValue
	case *qdrant.Value_ListValue:
		items := make([]any, 0, len(kind.ListValue.GetValues()))
		for _, item := range kind.ListValue.GetValues() {
			items = append(items, translateValue(item))
		}
		return items
	case *qdrant.Value_StructValue:
		fields := kind.StructValue.GetFields()
		nested := make(map[string]any, len(fields))
		for key, field := range fields {
			nested[key] = translateValue(field)
		}
		return nested
	}
	return nil
}
