package camalapi

import "github.com/edvin/camal/internal/model"

const ConditionTransportsPath = "condition-transports"

func (c *Client) ConditionTransports() Resource[model.ConditionTransport, model.ConditionTransportRequest, model.ConditionTransportFilter] {
	return NewResource[model.ConditionTransport, model.ConditionTransportRequest, model.ConditionTransportFilter](c, ConditionTransportsPath)
}
