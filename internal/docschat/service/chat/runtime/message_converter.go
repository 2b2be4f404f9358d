package runtime

import (
	"github.com/cloudwego/eino/schema"

	"github.com/moralisweb3/docschat/internal/docschat/service/chat/entity"
)

// ToSchemaMessages converts domain messages to Eino schema messages.
func ToSchemaMessages(msgs []*entity.Message) []*schema.Message {
	result := make([]*schema.Message, 0, len(msgs))
	for _, msg := range msgs {
		result = append(result, ToSchemaMessage(msg))
	}
	return result
}

// ToSchemaMessage converts a single domain message. Function-role messages
// map to the schema tool role: the completion service expects the tool
// result under the name of the tool that produced it.
func ToSchemaMessage(msg *entity.Message) *schema.Message {
	return &schema.Message{
		Role:    toSchemaRole(msg.Role),
		Content: msg.Content,
		Name:    msg.Name,
	}
}

func toSchemaRole(role entity.Role) schema.RoleType {
	switch role {
	case entity.RoleUser:
		return schema.User
	case entity.RoleAssistant:
		return schema.Assistant
	case entity.RoleFunction:
		return schema.Tool
	default:
		return schema.System
	}
}
