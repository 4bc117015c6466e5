/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/dispatch"
	"github.com/suparena/dispatch/errors"
)

// TypeAttribute is the item attribute carrying the dispatch key. Items of
// different concrete types can share one table and still be resolved back
// to the right Go type on read.
const TypeAttribute = "EntityType"

// MarshalItem encodes v as a DynamoDB attribute map with the dispatch key
// stored under TypeAttribute.
func (c *Codec[B]) MarshalItem(v B) (map[string]types.AttributeValue, error) {
	key, err := dispatch.DispatchKey(v)
	if err != nil {
		return nil, err
	}
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %q item: %w", key, err)
	}
	item[TypeAttribute] = &types.AttributeValueMemberS{Value: key}
	return item, nil
}

// UnmarshalItem decodes a DynamoDB attribute map into the concrete type
// registered under the item's TypeAttribute.
func (c *Codec[B]) UnmarshalItem(item map[string]types.AttributeValue) (B, error) {
	var zero B
	tag, ok := item[TypeAttribute].(*types.AttributeValueMemberS)
	if !ok || tag.Value == "" {
		return zero, fmt.Errorf("item has no %s attribute: %w", TypeAttribute, errors.ErrMissingDispatchKey)
	}

	pv, err := c.instance(tag.Value)
	if err != nil {
		return zero, err
	}
	if err := attributevalue.UnmarshalMap(item, pv.Interface()); err != nil {
		return zero, fmt.Errorf("unmarshal %q item: %w", tag.Value, err)
	}
	return c.assert(pv, tag.Value)
}
